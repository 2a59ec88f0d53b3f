package audio

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/alkime/wavegen/pkg/collections"
	"github.com/gen2brain/malgo"
)

type Device interface {
	// EnumerateDevices lists available playback devices.
	// It ignores any device configuration passed in.
	EnumerateDevices(ctx context.Context) ([]Info, error)

	// Play initializes the underlying device, streams pcm to it and blocks
	// until every byte has been handed to the device or ctx is done.
	// pcm must match the device configuration (format, channels, rate).
	Play(ctx context.Context, pcm []byte) error

	// IsStarted returns whether the audio device is currently started.
	IsStarted() bool

	// Dealloc deallocates the underlying audio device and frees resources.
	Dealloc(ctx context.Context)
}

type device struct {
	conf *DeviceConfig

	mu       sync.Mutex
	mgCtx    *malgo.AllocatedContext
	mgDevice *malgo.Device
}

func NewDevice(conf *DeviceConfig) Device {
	return &device{conf: conf}
}

func (d *device) EnumerateDevices(ctx context.Context) ([]Info, error) {
	// Initialize an empty context. This is fine for just
	// enumerating the available devices.
	devCtx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize malgo context: %w", err)
	}
	defer uninitializeContext(devCtx)

	playbackDevices, err := devCtx.Devices(malgo.Playback)
	if err != nil {
		return nil, fmt.Errorf("failed to get playback devices: %w", err)
	}

	return collections.Apply(playbackDevices, malgoDeviceInfoToDeviceInfo), nil
}

func (d *device) Play(ctx context.Context, pcm []byte) error {
	if d.conf == nil {
		return fmt.Errorf("device config nil. unable to play")
	}

	if len(pcm) == 0 {
		return nil
	}

	drained := make(chan struct{})
	var once sync.Once
	offset := 0

	// the callback runs on the malgo audio thread; offset is only touched there
	callbacks := malgo.DeviceCallbacks{
		Data: func(out, _ []byte, _ uint32) {
			n := copy(out, pcm[offset:])
			offset += n
			clear(out[n:])

			if offset >= len(pcm) {
				once.Do(func() { close(drained) })
			}
		},
	}

	if err := d.allocMGDevice(malgo.Playback, callbacks); err != nil {
		return fmt.Errorf("failed to create malgo playback device: %w", err)
	}
	defer d.deallocMGDevice()

	if err := d.mgDevice.Start(); err != nil {
		return fmt.Errorf("failed to start malgo device: %w", err)
	}

	slog.Debug("playback started", "bytes", len(pcm), "sampleRate", d.conf.SampleRate)

	select {
	case <-drained:
	case <-ctx.Done():
		_ = d.mgDevice.Stop()
		return fmt.Errorf("playback cancelled: %w", ctx.Err())
	}

	if err := d.mgDevice.Stop(); err != nil {
		return fmt.Errorf("failed to stop malgo device: %w", err)
	}

	return nil
}

func (d *device) Dealloc(ctx context.Context) {
	d.deallocMGDevice()
}

func (d *device) IsStarted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.mgDevice == nil {
		return false
	}

	return d.mgDevice.IsStarted()
}

func (d *device) allocMGDevice(devType malgo.DeviceType, callBacks malgo.DeviceCallbacks) error {
	mgCtx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize malgo context: %w", err)
	}

	var devCnf malgo.DeviceConfig

	switch devType { //nolint:exhaustive // Only Playback is supported; others handled by default
	case malgo.Playback:
		devCnf = malgo.DefaultDeviceConfig(malgo.Playback)
		devCnf.Playback.Format = d.conf.Format
		devCnf.Playback.Channels = uint32(d.conf.PlaybackChannels)
		devCnf.SampleRate = uint32(d.conf.SampleRate)

	default:
		uninitializeContext(mgCtx)
		return fmt.Errorf("unsupported device type: %v", devType)
	}

	mgDevice, err := malgo.InitDevice(mgCtx.Context, devCnf, callBacks)
	if err != nil {
		uninitializeContext(mgCtx)
		return fmt.Errorf("failed to initialize malgo device: %w", err)
	}

	d.mu.Lock()
	d.mgCtx, d.mgDevice = mgCtx, mgDevice
	d.mu.Unlock()

	return nil
}

func (d *device) deallocMGDevice() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.mgDevice == nil {
		return
	}

	d.mgDevice.Uninit()
	uninitializeContext(d.mgCtx)
	d.mgDevice = nil
	d.mgCtx = nil
}

type Info struct {
	Name        string
	IsDefault   bool
	FormatCount int
	Formats     []string
}

func malgoDeviceInfoToDeviceInfo(mdi malgo.DeviceInfo) Info {
	formats := make([]string, len(mdi.Formats))
	for i, mf := range mdi.Formats {
		formats[i] = fmt.Sprintf("(SampleSizeBytes: %d, Channels: %d, SampleRate: %d)",
			malgo.SampleSizeInBytes(mf.Format),
			mf.Channels, mf.SampleRate)
	}
	return Info{
		Name:        mdi.Name(),
		IsDefault:   mdi.IsDefault != 0,
		FormatCount: int(mdi.FormatCount),
		Formats:     formats,
	}
}

func uninitializeContext(deviceCtx *malgo.AllocatedContext) {
	if deviceCtx == nil {
		return
	}

	if err := deviceCtx.Uninit(); err != nil {
		slog.Error("failed to uninitialize malgo context", "error", err)
	}
	deviceCtx.Free()
}
