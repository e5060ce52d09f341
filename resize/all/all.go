// Package all registers every resize backend.
package all

import (
	_ "github.com/srlehn/pnmscale/resize/bild"
	_ "github.com/srlehn/pnmscale/resize/caire"
	_ "github.com/srlehn/pnmscale/resize/gift"
	_ "github.com/srlehn/pnmscale/resize/imaging"
	_ "github.com/srlehn/pnmscale/resize/native"
	_ "github.com/srlehn/pnmscale/resize/nfnt"
	_ "github.com/srlehn/pnmscale/resize/rdefault"
	_ "github.com/srlehn/pnmscale/resize/rez"
	_ "github.com/srlehn/pnmscale/resize/xdraw"
)
