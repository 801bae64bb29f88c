// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sites resolves user-typed site names.

Canonicalize maps aliases such as "mo" or "phys" to the canonical site ID used
as a roster key. Unknown tokens pass through unchanged:

	sites.Canonicalize("chem")   // "chemistry"
	sites.Canonicalize("gaming") // "gaming"

DisplayName renders the site's domain:

	sites.DisplayName("math")         // "math.stackexchange.com"
	sites.DisplayName("mathoverflow") // "mathoverflow.net"

Both functions are pure lookups over tables built at package init.
*/
package sites
