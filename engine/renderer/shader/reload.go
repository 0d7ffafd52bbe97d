package shader

import (
	"fmt"
	"slices"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/loader"
	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
	"go.uber.org/zap"
)

// ReloadableProgram rebuilds a program from its source files on demand. A failed rebuild
// keeps the previous program active.
type ReloadableProgram struct {
	dev     device.Device
	src     loader.Source
	paths   []string
	options []ProgramBuilderOption
	current Program
	log     *zap.Logger
}

// NewReloadableProgram loads and links the program at paths. The first build must succeed.
// Reload outcomes are logged through logger.Log.
//
// Parameters:
//   - dev: the device that owns the program
//   - src: the asset source the paths are read from
//   - paths: stage paths, stage types derived from the extensions
//   - options: options applied to every build
//
// Returns:
//   - *ReloadableProgram: the reloadable program
//   - error: a load, compile or link error of the first build
func NewReloadableProgram(dev device.Device, src loader.Source, paths []string, options ...ProgramBuilderOption) (*ReloadableProgram, error) {
	r := &ReloadableProgram{
		dev:     dev,
		src:     src,
		paths:   slices.Clone(paths),
		options: options,
		log:     logger.Log,
	}

	p, err := r.build()
	if err != nil {
		return nil, err
	}
	r.current = p
	return r, nil
}

func (r *ReloadableProgram) build() (Program, error) {
	stages, err := LoadStages(r.src, r.paths...)
	if err != nil {
		return nil, err
	}
	return NewProgram(r.dev, stages, r.options...)
}

// Program returns the active program.
func (r *ReloadableProgram) Program() Program {
	return r.current
}

// Paths returns the stage paths of the program.
func (r *ReloadableProgram) Paths() []string {
	return slices.Clone(r.paths)
}

// Uses reports whether path is one of the program's stage files.
func (r *ReloadableProgram) Uses(path string) bool {
	return slices.Contains(r.paths, path)
}

// Reload rebuilds the program and swaps it in, releasing the old one. On failure the old
// program stays active and the error is logged and returned.
//
// Returns:
//   - error: the build error, nil when the new program is active
func (r *ReloadableProgram) Reload() error {
	p, err := r.build()
	if err != nil {
		r.log.Error("shader reload failed, keeping previous program", zap.Strings("paths", r.paths), zap.Error(err))
		return fmt.Errorf("reload %v: %w", r.paths, err)
	}
	old := r.current
	r.current = p
	if old != nil {
		old.Release()
	}
	r.log.Info("shader program reloaded", zap.String("program", p.Name()))
	return nil
}

// Release releases the active program.
func (r *ReloadableProgram) Release() {
	if r.current != nil {
		r.current.Release()
	}
}
