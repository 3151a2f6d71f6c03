package constants

import "time"

// *********************************************************************************************************************
// THESE CONTROL HOW SCROLLING FEELS (EXACT VALUES DETERMINED BY FEEL)

// DecelerationFrameInterval controls how often a strip advances its momentum scroll after a drag is released
var DecelerationFrameInterval = 16 * time.Millisecond

// DecelerationFactor is the fraction of velocity kept from one deceleration frame to the next
const DecelerationFactor = 0.85

// MinDecelerationVelocity is the velocity, in cells per frame, below which a decelerating strip comes to rest.
// Releasing a drag slower than this does not decelerate at all
const MinDecelerationVelocity = 0.5

// WheelScrollCells is how far one mouse wheel notch scrolls a strip
const WheelScrollCells = 3

// *********************************************************************************************************************

// ToastDuration controls how long a toast stays on screen
var ToastDuration = 5 * time.Second

// DefaultColumnCount is the number of columns in the demo data before a refresh
const DefaultColumnCount = 1000

// DefaultRefreshColumnCount is the number of columns in the demo data after a refresh
const DefaultRefreshColumnCount = 300

// DefaultUnitWidth is the width in cells of the narrowest label column. Label columns are 1, 1.5 or 2 units wide and
// image columns are 1.5 units wide
const DefaultUnitWidth = 10

// DefaultStripHeight is the number of rows each strip occupies, not counting its title and footer
const DefaultStripHeight = 5
