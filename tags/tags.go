package tags

import "github.com/yohamta/donburi"

var (
	Goose   = donburi.NewTag().SetName("Goose")
	Gosling = donburi.NewTag().SetName("Gosling")
	Gate    = donburi.NewTag().SetName("Gate")
	Nest    = donburi.NewTag().SetName("Nest")
)

// Resolv tags for trigger zones
const (
	ResolvGoose    = "Goose"
	ResolvGosling  = "Gosling"
	ResolvPond     = "pond"
	ResolvGateZone = "gatezone"
	ResolvNest     = "nest"
)
