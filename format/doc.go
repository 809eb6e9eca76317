// SPDX-License-Identifier: MIT

// Package format validates and renders display formats.
//
// Grammar (a fixed table, not user-extensible):
//
//	numeric   %[-][0]W{.|,}D{f|g|e}[c]   0 < W ≤ 244, D < W
//	string    %[-|~][0]Ws                0 < W ≤ 244
//	date      %[-]t{c|C|d|w|m|q|h|y|g}<details>
//	calendar  %[-]tb<name>[:<details>]
//	binary    %[-]{8|16}{H|L}
//	hex       %21x  %-12x
//
// The width cap is fixed at MaxWidth (244); no version-adaptive limits.
// Rendering covers every class; date details are validated but rendered with
// the default layout of each unit.
//
// The package also hosts the name validators used for columns and macros.
package format
