package component

// RenderLayer orders sprite drawing; lower indexes draw first.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
