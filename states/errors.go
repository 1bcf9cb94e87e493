// SPDX-License-Identifier: MIT

package states

import "errors"

var (
	// ErrUnknownState indicates a state name not present in the catalog.
	ErrUnknownState = errors.New("states: unknown state")

	// ErrUnknownElement indicates an element name not present in the catalog.
	ErrUnknownElement = errors.New("states: unknown element")
)
