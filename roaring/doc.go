// Copyright 2024 The Kaldera Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package roaring implements the container layer of a Roaring Bitmap: a
// compressed representation of a set of 16-bit unsigned integers, backed by
// one of three interchangeable variants (array, bitmap, run) chosen for
// compactness. It provides the array/bitmap/run set-algebra kernels
// (and/or/xor/andNot and their in-place cousins), point and range mutation,
// rank/select, iteration and a bit-exact wire format, but does not itself
// partition a 32-bit universe into containers — that composition belongs to
// a higher-level bitmap type outside this package.
package roaring
