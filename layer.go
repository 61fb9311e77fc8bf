package drawq

// Compositing layers, back to front. Requests sharing a layer keep
// their submission order.
const (
	// LayerBackground0 is the furthest background image.
	LayerBackground0 = -300
	// LayerBackground1 is the closer background image.
	LayerBackground1 = -200
	// LayerBackgroundTiles holds tiles behind objects.
	LayerBackgroundTiles = -100
	// LayerTiles holds the interactive tile plane.
	LayerTiles = 0
	// LayerObjects holds game objects.
	LayerObjects = 50
	// LayerFloatingObjects holds objects drawn above the main plane.
	LayerFloatingObjects = 150
	// LayerForegroundTiles holds tiles in front of objects.
	LayerForegroundTiles = 200
	// LayerForeground0 is the closer foreground image.
	LayerForeground0 = 300
	// LayerForeground1 is the closest foreground image.
	LayerForeground1 = 400
	// LayerLightmap is the reference layer the render filter compares
	// against: everything below it is lit, everything above is not.
	LayerLightmap = 450
	// LayerHUD holds in-game status displays.
	LayerHUD = 500
	// LayerGUI holds menus and dialogs.
	LayerGUI = 600
	// LayerGetPixel sorts pixel readbacks above all drawing so they
	// sample the fully composited frame.
	LayerGetPixel = 1200
)

// Filter restricts which layers a render pass dispatches. The filter
// is evaluated per Render call and never removes requests.
type Filter uint8

const (
	// DrawAll dispatches every pending request.
	DrawAll Filter = iota
	// DrawBelowLightmap dispatches only requests below LayerLightmap.
	DrawBelowLightmap
	// DrawAboveLightmap dispatches only requests above LayerLightmap.
	DrawAboveLightmap
)

// String returns a human-readable name for the filter.
func (f Filter) String() string {
	switch f {
	case DrawAll:
		return "All"
	case DrawBelowLightmap:
		return "BelowLightmap"
	case DrawAboveLightmap:
		return "AboveLightmap"
	default:
		return "Unknown"
	}
}

// admits reports whether a request at the given layer passes the filter.
func (f Filter) admits(layer int) bool {
	switch f {
	case DrawBelowLightmap:
		return layer < LayerLightmap
	case DrawAboveLightmap:
		return layer > LayerLightmap
	default:
		return true
	}
}
