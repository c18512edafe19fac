package site

import "errors"

// Sentinel kinds for site errors.
var (
	ErrTemplates = errors.New("parse site templates failed")
	ErrRender    = errors.New("render page failed")
)
