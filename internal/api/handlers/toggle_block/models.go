package toggle_block

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	toggleBlock "github.com/m04kA/coaching-scheduler/internal/usecase/toggle_block"
	"github.com/m04kA/coaching-scheduler/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidSlot = errors.New("invalid slot")
)

// ToggleBlockRequest HTTP request model
type ToggleBlockRequest struct {
	Date string `json:"date"`
	Slot string `json:"slot"`
}

// BlockStateResponse HTTP response model
type BlockStateResponse struct {
	Date      string `json:"date"`
	Slot      string `json:"slot"`
	StartTime string `json:"startTime"`
	Blocked   bool   `json:"blocked"`
}

func (r *ToggleBlockRequest) ToUseCaseRequest(caller domain.Identity) (*toggleBlock.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	slot, err := types.ParseSlotLabel(r.Slot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidSlot, err)
	}

	return &toggleBlock.Request{Caller: caller, Date: date, Slot: slot}, nil
}

func FromUseCaseResponse(resp *toggleBlock.Response) *BlockStateResponse {
	return &BlockStateResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		Slot:      resp.Slot.String(),
		StartTime: resp.StartTime.Format(time.RFC3339),
		Blocked:   resp.Blocked,
	}
}
