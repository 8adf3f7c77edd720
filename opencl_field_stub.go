//go:build !opencl

package main

import "errors"

type openCLFieldSolver struct{}

func newOpenCLFieldSolver(_ []gridElement) (*openCLFieldSolver, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (s *openCLFieldSolver) UploadLUT(_ *scaleLUT) error {
	return errors.New("OpenCL solver unavailable")
}

func (s *openCLFieldSolver) Evaluate(_ *[maxCenters]focalCenter, _ *sceneConfig, _, _ []float64) error {
	return errors.New("OpenCL solver unavailable")
}

func (s *openCLFieldSolver) Close() {}

func (s *openCLFieldSolver) DeviceName() string { return "" }
