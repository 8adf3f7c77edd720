//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// openCLFieldSolver evaluates the distance field for every grid element in
// one kernel launch. Grid positions are uploaded once at construction, the
// LUT whenever it is rebuilt, and the center states each frame.
type openCLFieldSolver struct {
	context  *cl.Context
	queue    *cl.CommandQueue
	program  *cl.Program
	kernel   *cl.Kernel
	posBuf   *cl.MemObject
	centBuf  *cl.MemObject
	lutBuf   *cl.MemObject
	scaleBuf *cl.MemObject
	distBuf  *cl.MemObject

	count      int
	deviceName string

	centerStage [maxCenters * 4]float32
	lutStage    [lutSize]float32
	scaleOut    []float32
	distOut     []float32
}

const fieldKernelSource = `__kernel void field_eval(
    const int count,
    const int center_count,
    const float weight_epsilon,
    const float max_distance,
    const float min_scale,
    const int lut_size,
    __global const float* positions,
    __global const float* centers,
    __global const float* lut,
    __global float* scales,
    __global float* dists)
{
    int idx = get_global_id(0);
    if (idx >= count) {
        return;
    }
    float px = positions[idx * 3];
    float py = positions[idx * 3 + 1];
    float pz = positions[idx * 3 + 2];
    float best = 1e30f;
    for (int i = 0; i < center_count; i++) {
        float w = centers[i * 4 + 3];
        if (w <= weight_epsilon) {
            continue;
        }
        float dx = px - centers[i * 4];
        float dy = py - centers[i * 4 + 1];
        float dz = pz - centers[i * 4 + 2];
        float d = sqrt(dx * dx + dy * dy + dz * dz) / w;
        if (d < best) {
            best = d;
        }
    }
    float t = 1.0f;
    if (best < 1e29f) {
        t = best / max_distance;
        if (t > 1.0f) {
            t = 1.0f;
        }
    }
    int li = (int)(t * (float)(lut_size - 1));
    float s = min_scale;
    if (li >= 0 && li < lut_size) {
        float v = lut[li];
        if (v != 0.0f) {
            s = v;
        }
    }
    scales[idx] = s;
    dists[idx] = t;
}`

// pickOpenCLDevice selects the first GPU device across all platforms, falling
// back to a CPU device.
func pickOpenCLDevice() (*cl.Device, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	for _, deviceType := range []cl.DeviceType{cl.DeviceTypeGPU, cl.DeviceTypeCPU} {
		for _, p := range platforms {
			devices, derr := p.GetDevices(deviceType)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				return devices[0], nil
			}
		}
	}
	return nil, errors.New("no suitable OpenCL devices found")
}

func newOpenCLFieldSolver(elements []gridElement) (*openCLFieldSolver, error) {
	device, err := pickOpenCLDevice()
	if err != nil {
		return nil, err
	}
	context, err := cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	s := &openCLFieldSolver{
		context:    context,
		count:      len(elements),
		deviceName: device.Name(),
		scaleOut:   make([]float32, len(elements)),
		distOut:    make([]float32, len(elements)),
	}
	ok := false
	defer func() {
		if !ok {
			s.Close()
		}
	}()

	s.queue, err = context.CreateCommandQueue(device, 0)
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	s.program, err = context.CreateProgramWithSource([]string{fieldKernelSource})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := s.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		if buildErr, isBuildErr := err.(cl.BuildError); isBuildErr {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	s.kernel, err = s.program.CreateKernel("field_eval")
	if err != nil {
		return nil, fmt.Errorf("creating field kernel: %w", err)
	}

	floatBytes := int(unsafe.Sizeof(float32(0)))
	s.posBuf, err = context.CreateEmptyBuffer(cl.MemReadOnly, s.count*3*floatBytes)
	if err != nil {
		return nil, fmt.Errorf("allocating position buffer: %w", err)
	}
	s.centBuf, err = context.CreateEmptyBuffer(cl.MemReadOnly, maxCenters*4*floatBytes)
	if err != nil {
		return nil, fmt.Errorf("allocating center buffer: %w", err)
	}
	s.lutBuf, err = context.CreateEmptyBuffer(cl.MemReadOnly, lutSize*floatBytes)
	if err != nil {
		return nil, fmt.Errorf("allocating LUT buffer: %w", err)
	}
	s.scaleBuf, err = context.CreateEmptyBuffer(cl.MemWriteOnly, s.count*floatBytes)
	if err != nil {
		return nil, fmt.Errorf("allocating scale buffer: %w", err)
	}
	s.distBuf, err = context.CreateEmptyBuffer(cl.MemWriteOnly, s.count*floatBytes)
	if err != nil {
		return nil, fmt.Errorf("allocating distance buffer: %w", err)
	}

	positions := make([]float32, s.count*3)
	for i, e := range elements {
		positions[i*3] = float32(e.pos.x)
		positions[i*3+1] = float32(e.pos.y)
		positions[i*3+2] = float32(e.pos.z)
	}
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.posBuf, true, 0, positions, nil); err != nil {
		return nil, fmt.Errorf("uploading grid positions: %w", err)
	}
	ok = true
	return s, nil
}

// UploadLUT pushes a rebuilt lookup table to the device.
func (s *openCLFieldSolver) UploadLUT(lut *scaleLUT) error {
	for i, v := range lut.values {
		s.lutStage[i] = float32(v)
	}
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.lutBuf, true, 0, s.lutStage[:], nil); err != nil {
		return fmt.Errorf("uploading LUT: %w", err)
	}
	return nil
}

// Evaluate runs one batch field evaluation and reads the per-element scales
// and normalized distances back into the provided buffers.
func (s *openCLFieldSolver) Evaluate(centers *[maxCenters]focalCenter, cfg *sceneConfig, scales, dists []float64) error {
	for i := range centers {
		c := &centers[i]
		s.centerStage[i*4] = float32(c.pos.x)
		s.centerStage[i*4+1] = float32(c.pos.y)
		s.centerStage[i*4+2] = float32(c.pos.z)
		s.centerStage[i*4+3] = float32(c.weight)
	}
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.centBuf, true, 0, s.centerStage[:], nil); err != nil {
		return fmt.Errorf("uploading center states: %w", err)
	}
	if err := s.kernel.SetArgs(
		int32(s.count),
		int32(maxCenters),
		float32(weightEpsilon),
		float32(cfg.maxDistance),
		float32(cfg.minScale),
		int32(lutSize),
		s.posBuf,
		s.centBuf,
		s.lutBuf,
		s.scaleBuf,
		s.distBuf,
	); err != nil {
		return fmt.Errorf("setting kernel arguments: %w", err)
	}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, []int{s.count}, nil, nil); err != nil {
		return fmt.Errorf("enqueueing field kernel: %w", err)
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.scaleBuf, true, 0, s.scaleOut, nil); err != nil {
		return fmt.Errorf("reading scale buffer: %w", err)
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.distBuf, true, 0, s.distOut, nil); err != nil {
		return fmt.Errorf("reading distance buffer: %w", err)
	}
	for i := range scales {
		scales[i] = float64(s.scaleOut[i])
		dists[i] = float64(s.distOut[i])
	}
	return nil
}

func (s *openCLFieldSolver) Close() {
	if s.distBuf != nil {
		s.distBuf.Release()
		s.distBuf = nil
	}
	if s.scaleBuf != nil {
		s.scaleBuf.Release()
		s.scaleBuf = nil
	}
	if s.lutBuf != nil {
		s.lutBuf.Release()
		s.lutBuf = nil
	}
	if s.centBuf != nil {
		s.centBuf.Release()
		s.centBuf = nil
	}
	if s.posBuf != nil {
		s.posBuf.Release()
		s.posBuf = nil
	}
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}

func (s *openCLFieldSolver) DeviceName() string {
	return s.deviceName
}
