// SPDX-License-Identifier: MIT
// Package engine_test contains test shapes shared by the engine tests.

package engine_test

type nv1mo2 struct{}

func (nv1mo2) Vars() int  { return 1 }
func (nv1mo2) Order() int { return 2 }

type nv1mo4 struct{}

func (nv1mo4) Vars() int  { return 1 }
func (nv1mo4) Order() int { return 4 }

type nv2mo2 struct{}

func (nv2mo2) Vars() int  { return 2 }
func (nv2mo2) Order() int { return 2 }

type nv2mo3 struct{}

func (nv2mo3) Vars() int  { return 2 }
func (nv2mo3) Order() int { return 3 }

type nv4mo4 struct{}

func (nv4mo4) Vars() int  { return 4 }
func (nv4mo4) Order() int { return 4 }

type nv6mo4 struct{}

func (nv6mo4) Vars() int  { return 6 }
func (nv6mo4) Order() int { return 4 }

type nv3mo0 struct{}

func (nv3mo0) Vars() int  { return 3 }
func (nv3mo0) Order() int { return 0 }

// noVars is an invalid shape (Vars < 1).
type noVars struct{}

func (noVars) Vars() int  { return 0 }
func (noVars) Order() int { return 2 }

// negOrder is an invalid shape (Order < 0).
type negOrder struct{}

func (negOrder) Vars() int  { return 2 }
func (negOrder) Order() int { return -1 }
