package main

import (
	"log"
	"os"
	"runtime/pprof"
	"sync"
	"time"
)

// startDefaultPGORecording captures a CPU profile of the animator and field
// evaluation loop to the provided path, stopping automatically once the
// duration elapses. The returned stop function may also be called early and
// is safe to invoke more than once.
func startDefaultPGORecording(path string, duration time.Duration) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			_ = f.Close()
			log.Printf("CPU profile written to %s", path)
		})
	}
	time.AfterFunc(duration, stop)
	return stop, nil
}
