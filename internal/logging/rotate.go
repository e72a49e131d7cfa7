/*
NAME
  rotate.go

DESCRIPTION
  Rotate wraps lumberjack.Logger as an io.Writer target for New, giving
  the example binaries size/age-based log rotation without pulling a
  second logging dependency into callers.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package logging

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotate-related defaults, matching the teacher's cmd/looper/main.go
// constants.
const (
	MaxSizeMB  = 500
	MaxBackups = 10
	MaxAgeDays = 28
)

// Rotate returns an io.Writer that writes to path, rotating the file
// once it exceeds MaxSizeMB, keeping at most MaxBackups old files for
// at most MaxAgeDays.
func Rotate(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    MaxSizeMB,
		MaxBackups: MaxBackups,
		MaxAge:     MaxAgeDays,
	}
}
