package interfaces

import domaintypes "displayinfo/internal/domain/types"

// DisplayInfoStore keeps the last DisplayInfo across process restarts.
type DisplayInfoStore interface {
	SaveDisplayInfo(info domaintypes.DisplayInfo) error
	LoadDisplayInfo() (domaintypes.DisplayInfo, bool, error)
}
