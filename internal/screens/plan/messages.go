package plan

import (
	"time"

	"github.com/abhisek/pathfinder/internal/pipeline"
)

// resultMsg is sent when the assessment pipeline finishes.
type resultMsg struct {
	Result *pipeline.Result
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
