package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lidario/potree/cloud"
	"github.com/stretchr/testify/require"
)

func TestWritePointsTextHeaderAndRows(t *testing.T) {
	result := cloud.Cloud{
		Points: 2,
		Position: []cloud.Vec3[float64]{
			{1, 2, 3},
			{4, 5, 6},
		},
		RGB: []cloud.Vec3[float64]{
			{10, 20, 30},
			{40, 50, 60},
		},
		Other: map[string]any{
			"intensity": []uint16{100, 200},
		},
		OtherOrder: []string{"intensity"},
	}

	path := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, writePointsText(path, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "position.x,position.y,position.z,rgb.r,rgb.g,rgb.b,intensity\n" +
		"1,2,3,10,20,30,100\n" +
		"4,5,6,40,50,60,200\n"
	require.Equal(t, want, string(data))
}

func TestWritePointsTextNoRGBOrOther(t *testing.T) {
	result := cloud.Cloud{
		Points: 1,
		Position: []cloud.Vec3[float64]{
			{1, 1, 1},
		},
	}

	path := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, writePointsText(path, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "position.x,position.y,position.z\n1,1,1\n", string(data))
}

func TestFormatColumnValue(t *testing.T) {
	require.Equal(t, "7", formatColumnValue([]uint8{7}, 0))
	require.Equal(t, "-3", formatColumnValue([]int16{-3}, 0))
	require.Equal(t, "1.5", formatColumnValue([]float32{1.5}, 0))
	require.Equal(t, "", formatColumnValue("not a column", 0))
}
