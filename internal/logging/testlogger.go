/*
NAME
  testlogger.go

DESCRIPTION
  TestLogger adapts a *testing.T to the Logger interface, so that code
  under test can log through t.Logf without pulling in a real sink.

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

import "testing"

// TestLogger adapts a *testing.T to Logger, for use in package tests:
//
//	log := (*logging.TestLogger)(t)
type TestLogger testing.T

func (l *TestLogger) log(level, msg string, kv ...interface{}) {
	(*testing.T)(l).Logf("%s: %s %v", level, msg, kv)
}

func (l *TestLogger) Debug(msg string, kv ...interface{}) { l.log("DEBUG", msg, kv...) }
func (l *TestLogger) Info(msg string, kv ...interface{})  { l.log("INFO", msg, kv...) }
func (l *TestLogger) Warn(msg string, kv ...interface{})  { l.log("WARN", msg, kv...) }
func (l *TestLogger) Error(msg string, kv ...interface{}) { l.log("ERROR", msg, kv...) }
func (l *TestLogger) Fatal(msg string, kv ...interface{}) { (*testing.T)(l).Fatalf("%s %v", msg, kv) }
