// SPDX-License-Identifier: MIT

// Package catalog declares the shapes exposed to the host.
//
// Each entry is a zero-size Shape marker plus one declare call; the method
// surface comes entirely from adapter.NewClass, so adding a shape never
// touches per-type logic:
//
//	type Nv3Mo5 struct{}
//	func (Nv3Mo5) Vars() int  { return 3 }
//	func (Nv3Mo5) Order() int { return 5 }
//	...
//	declare[Nv3Mo5]("Tpsa3D"),
//
// Declared shapes:
//
//	Tpsa6D  nv=6 mo=4  (210 coefficients)
//	Tpsa4D  nv=4 mo=4  (70 coefficients)
//	Tpsa2D  nv=2 mo=6  (28 coefficients)
package catalog
