// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is reported by [NewServer] and the run loop when no
// transport server could be constructed for the admin API, which would leave
// the process with nothing to serve.
var errNoServersAreCreated = errors.New("no servers are created")
