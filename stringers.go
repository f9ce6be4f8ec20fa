// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geoarray

import "fmt"

func (a *PointArray) String() string {
	return arrayString(a)
}

func (a *LineStringArray) String() string {
	return arrayString(a)
}

func (a *PolygonArray) String() string {
	return arrayString(a)
}

func (a *MultiPointArray) String() string {
	return arrayString(a)
}

func (a *MultiLineStringArray) String() string {
	return arrayString(a)
}

func (a *MultiPolygonArray) String() string {
	return arrayString(a)
}

func (a *MixedArray) String() string {
	return arrayString(a)
}

func arrayString(a Array) string {
	return fmt.Sprintf("%sArray{Len:%d,Nulls:%d}", a.Type(), a.Len(), a.NullN())
}
