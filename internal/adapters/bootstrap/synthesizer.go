// Package bootstrap synthesizes the throwaway Zig bootstrap package that
// pins an engine release and drives its generator, and runs the build tool
// against it.
package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/lume-engine/cli/internal/core/ports"
)

const (
	// DependencyFileName is the generated dependency descriptor.
	DependencyFileName = "build.zig.zon"
	// DriverFileName is the generated driver descriptor.
	DriverFileName = "build.zig"

	dirPerm  = 0o755
	filePerm = 0o644
)

// dependencyDescriptorFormat is the dependency descriptor template. Only the
// source URL and hash vary; every other field, the field order, and the
// quoting are part of the contract with the downstream build tool.
const dependencyDescriptorFormat = `.{
    .fingerprint = 0x5f8f2e2a91c6d3b7,
    .name = .lume_bootstrap,
    .version = "0.0.0",
    .minimum_zig_version = "0.14.0",
    .dependencies = .{
        .lume = .{
            .url = "%s",
            .hash = "%s",
        },
    },
    .paths = .{
        "build.zig",
        "build.zig.zon",
    },
}
`

// driverDescriptor is deliberately independent of the pinned version:
// upgrading the engine only ever rewrites the dependency descriptor. It
// builds the engine's generator artifact and runs it from the bootstrap
// directory's parent, forwarding any passthrough arguments.
const driverDescriptor = `const std = @import("std");

pub fn build(b: *std.Build) void {
    const target = b.standardTargetOptions(.{});
    const optimize = b.standardOptimizeOption(.{});

    const lume = b.dependency("lume", .{
        .target = target,
        .optimize = optimize,
    });

    const generator = lume.artifact("lume-gen");

    const run_generator = b.addRunArtifact(generator);
    run_generator.setCwd(b.path(".."));
    if (b.args) |args| {
        run_generator.addArgs(args);
    }

    const generate_step = b.step("generate", "Run the Lume project generator");
    generate_step.dependOn(&run_generator.step);
}
`

// DependencyDescriptor renders the dependency descriptor for a pinned
// (sourceURL, hash) pair. It is a pure function: identical inputs produce
// byte-identical output.
func DependencyDescriptor(sourceURL, hash string) string {
	return fmt.Sprintf(dependencyDescriptorFormat, sourceURL, hash)
}

// DriverDescriptor returns the static driver descriptor.
func DriverDescriptor() string {
	return driverDescriptor
}

// Synthesizer implements ports.Synthesizer on the local filesystem.
type Synthesizer struct {
	logger ports.Logger
}

// NewSynthesizer creates a new Synthesizer.
func NewSynthesizer(logger ports.Logger) *Synthesizer {
	return &Synthesizer{logger: logger}
}

// Synthesize writes both descriptors into dir, creating it if absent.
// Existing contents are overwritten wholesale; the directory carries no
// state worth diffing against.
func (s *Synthesizer) Synthesize(dir, sourceURL, hash string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create bootstrap directory"), "dir", dir)
	}

	depPath := filepath.Join(dir, DependencyFileName)
	if err := os.WriteFile(depPath, []byte(DependencyDescriptor(sourceURL, hash)), filePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write dependency descriptor"), "path", depPath)
	}

	driverPath := filepath.Join(dir, DriverFileName)
	if err := os.WriteFile(driverPath, []byte(driverDescriptor), filePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write driver descriptor"), "path", driverPath)
	}

	s.logger.Info("bootstrap descriptors written to " + dir)
	return nil
}

// Clean removes dir entirely. A missing directory is fine.
func (s *Synthesizer) Clean(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove bootstrap directory"), "dir", dir)
	}
	return nil
}
