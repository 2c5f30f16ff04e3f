// Package endian provides byte order utilities for binary decoding.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine
// interface, matching the convention used for reading the hierarchy,
// octree, and metadata binary sections of a Potree 2.0 dataset.
//
// Potree 2.0 files are always little-endian; GetLittleEndianEngine is the
// engine used throughout this module. The EndianEngine type is kept
// general so decoding code never assumes binary.LittleEndian directly.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations. binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used by the
// Potree 2.0 on-disk format.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
