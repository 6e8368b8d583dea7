package app

import "time"

// FrameMsg triggers a display refresh.
type FrameMsg time.Time
