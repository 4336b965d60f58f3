// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// maxErrors bounds error draining, as GetError without a current
// context may never report NO_ERROR.
const maxErrors = 16

// Call runs fn, which makes one or more driver calls, and checks the
// driver error state afterwards. Errors pending before the call are
// discarded first, so that only those caused by fn are reported, as
// a [*CallError] named by the given call name. It returns nil if no
// errors were reported.
func Call(d Driver, call string, fn func()) error {
	ClearErrors(d)
	fn()
	var codes []uint32
	for range maxErrors {
		code := d.GetError()
		if code == NO_ERROR {
			break
		}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil
	}
	return &CallError{Call: call, Codes: codes}
}

// ClearErrors drains all pending driver errors.
func ClearErrors(d Driver) {
	for range maxErrors {
		if d.GetError() == NO_ERROR {
			return
		}
	}
}
