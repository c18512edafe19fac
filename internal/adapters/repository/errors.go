package repository

import (
	"errors"
	"fmt"

	"github.com/okian/spithack/internal/domain/model"
)

// Sentinel kinds for repository errors.
var (
	ErrNotFound     = fmt.Errorf("record %w", model.ErrNotFound)
	ErrLoadFixtures = errors.New("load fixtures failed")
)
