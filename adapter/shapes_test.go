// SPDX-License-Identifier: MIT

package adapter_test

type nv2mo2 struct{}

func (nv2mo2) Vars() int  { return 2 }
func (nv2mo2) Order() int { return 2 }

type nv4mo4 struct{}

func (nv4mo4) Vars() int  { return 4 }
func (nv4mo4) Order() int { return 4 }
