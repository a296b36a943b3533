package components

import "github.com/yohamta/donburi"

type RampData struct {
	RisingRight bool
}

var Ramp = donburi.NewComponentType[RampData]()
