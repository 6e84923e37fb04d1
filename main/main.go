// Command main runs an encode/decode loop for profiling.
package main

import (
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/spf13/pflag"

	"github.com/rawbytedev/fressian"
	"github.com/rawbytedev/fressian/pkg/wire"
)

func main() {
	iterations := pflag.Int("iterations", 10000, "encode/decode round trips to run")
	memprofile := pflag.String("memprofile", "mem.prof", "write a heap profile to this file")
	pprofAddr := pflag.String("pprof-addr", "", "serve net/http/pprof on this address and wait")
	zeroCopy := pflag.Bool("zero-copy", true, "decode byte arrays without copying")
	pflag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if *pprofAddr != "" {
		go func() {
			logger.Error("pprof server stopped", "err", http.ListenAndServe(*pprofAddr, nil))
		}()
	}
	out, err := os.Create(*memprofile)
	if err != nil {
		logger.Error("create profile", "err", err)
		os.Exit(1)
	}
	defer out.Close()
	runtime.MemProfileRate = 1

	z := map[string]any{
		"val":      []string{"azerty", "hello", "world", "random"},
		"mod":      []int8{12, 10, 13, 0},
		"integers": []int16{100, 250, 300},
		"float3":   []float32{12.13, 16.23, 75.1},
		"float6":   []float64{100.5, 165.63, 153.5},
		"blob":     make([]byte, 4096),
		"set":      wire.Set{"a", "b"},
	}
	y := fressian.New(fressian.Options{ZeroCopy: *zeroCopy, InitialCapacity: 8192, Logger: logger})
	start := time.Now()
	for i := 0; i < *iterations; i++ {
		data, err := y.Encode(z)
		if err != nil {
			logger.Error("encode", "err", err)
			os.Exit(1)
		}
		if _, err := y.Decode(data); err != nil {
			logger.Error("decode", "err", err)
			os.Exit(1)
		}
	}
	logger.Info("done", "iterations", *iterations, "elapsed", time.Since(start))
	if err := pprof.WriteHeapProfile(out); err != nil {
		logger.Error("write profile", "err", err)
	}
	if *pprofAddr != "" {
		select {}
	}
}
