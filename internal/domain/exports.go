package domain

import (
	interfaces "displayinfo/internal/domain/interfaces"
	types "displayinfo/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Snapshot         = types.Snapshot
	DensityBucket    = types.DensityBucket
	DeviceCategory   = types.DeviceCategory
	RoundedDiagonal  = types.RoundedDiagonal
	SizeClass        = types.SizeClass
	DisplayInfo      = types.DisplayInfo
	Record           = types.Record
	MeasurementError = types.MeasurementError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	DensityClassifier  = interfaces.DensityClassifier
	SizeClassifier     = interfaces.SizeClassifier
	DisplayInfoBuilder = interfaces.DisplayInfoBuilder
	DisplayInfoStore   = interfaces.DisplayInfoStore
	SnapshotSource     = interfaces.SnapshotSource
	RemoteClient       = interfaces.RemoteClient
)

// Enum values re-exported so callers never need the types subpackage.
const (
	LDPI    = types.LDPI
	MDPI    = types.MDPI
	TVDPI   = types.TVDPI
	HDPI    = types.HDPI
	XHDPI   = types.XHDPI
	XXHDPI  = types.XXHDPI
	XXXHDPI = types.XXXHDPI

	Phone   = types.Phone
	Phablet = types.Phablet
	Tablet  = types.Tablet
	Other   = types.Other
)

var (
	ErrInvalidMeasurement = types.ErrInvalidMeasurement

	FromRecord          = types.FromRecord
	ParseDensityBucket  = types.ParseDensityBucket
	ParseDeviceCategory = types.ParseDeviceCategory
	Positive            = types.Positive
)
