package config

import "image/color"

const (
	WindowWidth  = 800
	WindowHeight = 600

	// Audio level meter
	SmoothingFactor = 0.6
	LevelWindow     = 2048

	// Button dimensions; the button is centred horizontally with its centre
	// at ButtonCenterY of the window height.
	ButtonWidth   = 280
	ButtonHeight  = 64
	ButtonCenterY = 0.58
	ButtonHover   = 1.06
	ButtonPress   = 0.96

	// Revealed layout
	PanelWidth   = 360
	PanelHeight  = 300
	PanelTop     = 0.36
	GardenWidth  = 340
	GardenHeight = 240

	// Confetti
	ConfettiCount       = 80
	ConfettiLifetime    = 6.0
	ConfettiSpread      = 200.0
	ConfettiMinSize     = 4.0
	ConfettiMaxSize     = 14.0
	ConfettiMinDuration = 3.0
	ConfettiMaxDuration = 6.0
	ConfettiMaxDelay    = 1.5
	ConfettiMaxRotation = 360.0
	ConfettiStartY      = -20.0
	ConfettiOvershoot   = 50.0

	// Sparkle burst
	BurstCount       = 6
	BurstMinDistance = 60.0
	BurstMaxDistance = 100.0
	BurstDuration    = 0.8
	BurstStagger     = 0.05
	BurstPeakScale   = 1.5
	SparkleRadius    = 3.0

	// Floating hearts
	HeartCount       = 10
	HeartMinX        = 5.0
	HeartMaxX        = 95.0
	HeartMinSize     = 14.0
	HeartMaxSize     = 32.0
	HeartMinDuration = 12.0
	HeartMaxDuration = 20.0
	HeartStagger     = 0.8
	HeartMinOpacity  = 0.15
	HeartMaxOpacity  = 0.35
	HeartBelow       = 40.0
	HeartAbove       = -60.0
	HeartSway        = 20.0
	HeartTilt        = 15.0

	// Revealed content
	PanelSlide      = 80.0
	PanelDuration   = 0.9
	FlowerDuration  = 1.2
	ShimmerPeriod   = 4.0
	GlowPeriod      = 3.0
	HeartbeatPeriod = 2.0

	DefaultVolume = 0.7
	VolumeStep    = 0.1
)

var (
	BackgroundTop    = color.RGBA{0xfd, 0xf2, 0xf8, 0xff}
	BackgroundBottom = color.RGBA{0xff, 0xf1, 0xf2, 0xff}
	RoseLight        = color.RGBA{0xfd, 0xa4, 0xaf, 0xff}
	Rose             = color.RGBA{0xf4, 0x3f, 0x5e, 0xff}
	RoseDeep         = color.RGBA{0xe1, 0x1d, 0x48, 0xff}
	RoseText         = color.RGBA{0xbe, 0x18, 0x5d, 0xff}
	HeartColor       = color.RGBA{0xfd, 0xa4, 0xaf, 0xff}
	SparkleColor     = color.RGBA{0xfd, 0xe0, 0x47, 0xff}
	ShimmerColor     = color.RGBA{0xf4, 0x72, 0xb6, 0xff}
	ShimmerAccent    = color.RGBA{0xfb, 0x92, 0x3c, 0xff}
	PanelColor       = color.RGBA{0xff, 0xff, 0xff, 0xe6}
	TextGray         = color.RGBA{0x4b, 0x55, 0x63, 0xff}
	StemColor        = color.RGBA{0x22, 0xc5, 0x5e, 0xff}
	LeafColor        = color.RGBA{0x16, 0xa3, 0x4a, 0xff}
	ButterflyColor   = color.RGBA{0x81, 0x8c, 0xf8, 0xff}

	// ConfettiPalette is indexed by particle index modulo its length.
	ConfettiPalette = []color.RGBA{
		{0xff, 0x69, 0xb4, 0xff},
		{0xff, 0x14, 0x93, 0xff},
		{0xc7, 0x15, 0x85, 0xff},
		{0xff, 0xc0, 0xcb, 0xff},
		{0xff, 0x85, 0xa2, 0xff},
		{0xe8, 0xa0, 0xbf, 0xff},
		{0xd4, 0xaf, 0x37, 0xff},
		{0xf5, 0xe6, 0xcc, 0xff},
	}
)
