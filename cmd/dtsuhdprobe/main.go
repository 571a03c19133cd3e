/*
DESCRIPTION
  dtsuhdprobe is a command-line tool that walks a DTS-UHD stream (raw or
  DTS-HD wrapped) and reports per-frame status and the stream's
  descriptor, exercising the dtsuhd/stream/dtshd/udts packages end to
  end.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements dtsuhdprobe.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"

	"github.com/ausocean/dtsuhd/codec/dtsuhd"
	"github.com/ausocean/dtsuhd/muxer/udts"
	"github.com/ausocean/dtsuhd/stream"
	"github.com/ausocean/utils/logging"
)

// Logging configuration, in the style of the wider pack's on-device
// logging setup.
const (
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 7 // days
)

// config is the optional YAML configuration file format for
// dtsuhdprobe, supplementing the command-line flags.
type config struct {
	MaxFrames int  `yaml:"max_frames"`
	CRCStrict bool `yaml:"crc_strict"`
}

func main() {
	var (
		logFile   = pflag.String("log-file", "", "rotate logs to this file instead of stderr")
		maxFrames = pflag.Int("max-frames", 0, "stop after this many frames (0 = unlimited)")
		crcStrict = pflag.Bool("crc-strict", false, "treat any INVALID frame as fatal rather than skipping it")
		cfgPath   = pflag.String("config", "", "optional YAML config file")
		verbosity = pflag.Int8("verbosity", logging.Info, "log verbosity (as per github.com/ausocean/utils/logging levels)")
	)
	pflag.Parse()

	if *cfgPath != "" {
		cfg, err := loadConfig(*cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "dtsuhdprobe: loading config:", err)
			os.Exit(1)
		}
		if cfg.MaxFrames != 0 {
			*maxFrames = cfg.MaxFrames
		}
		*crcStrict = *crcStrict || cfg.CRCStrict
	}

	var out = os.Stderr
	var closer func()
	if *logFile != "" {
		lj := &lumberjack.Logger{
			Filename:   *logFile,
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackup,
			MaxAge:     logMaxAge,
		}
		log := logging.New(*verbosity, lj, false)
		closer = func() { lj.Close() }
		run(log, pflag.Args(), *maxFrames, *crcStrict)
		closer()
		return
	}
	log := logging.New(*verbosity, out, false)
	run(log, pflag.Args(), *maxFrames, *crcStrict)
}

func loadConfig(path string) (config, error) {
	var cfg config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(log logging.Logger, args []string, maxFrames int, crcStrict bool) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: dtsuhdprobe [flags] file")
		os.Exit(2)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatal("reading input file", "error", err)
	}

	score := stream.Probe(data)
	log.Info("probed file", "score", score)

	dem, err := stream.NewDemuxer(data, log)
	if err != nil {
		log.Fatal("opening demuxer", "error", err)
	}

	if dem.Descriptor != nil && dem.Descriptor.Valid {
		box := udts.Build(*dem.Descriptor)
		log.Info("built descriptor box", "bytes", len(box), "channel_count", dem.Descriptor.ChannelCount, "sample_rate", dem.Descriptor.SampleRate)
	}

	frames := 0
	for {
		if maxFrames > 0 && frames >= maxFrames {
			break
		}
		_, status, info, err := dem.Next()
		if status == dtsuhd.Null {
			break
		}
		if status == dtsuhd.Invalid && crcStrict {
			log.Fatal("frame parse failed", "error", err)
		}
		if status == dtsuhd.OK {
			log.Info("frame", "sync", info.Sync, "bytes", info.FrameBytes, "sample_count", info.SampleCount, "duration", info.Duration)
		} else {
			log.Warning("frame not OK", "status", status.String())
		}
		frames++
	}

	fmt.Printf("parsed %d frames\n", frames)
}
