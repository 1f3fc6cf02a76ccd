// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package message dispatches the message contract between capturers,
// front-ends and the client core.
//
// Every request is a [models.Message] carrying an action name and every
// reply is a [models.MessageResponse]. Failures never escape as Go errors:
// they are reported in the Error field so that any front-end, in process or
// not, can render them.
package message
