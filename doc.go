// Package nxcube is the rotation engine of an interactive NxNxN twisty cube.
//
// # Features
//
//   - Sticker state for any cube size, one observable cell per sticker
//   - Layer and whole-cube turns about x, y and z (90, 180, 270, 360 degrees)
//   - Batched change notification: subscribers see a turn in one flush
//   - A single-flight guard so only one turn is in flight at a time
//   - A gesture state machine that turns a pointer drag into a turn
//
// # Quick Start
//
// Turn a layer and watch a sticker:
//
//	cube, err := nxcube.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cube.Cell(nxcube.Up, 0, 0).Bind(func(label nxcube.Face) {
//	    fmt.Println("Up[0][0] is now", label)
//	})
//
//	err = cube.Rotate(ctx, nxcube.LayerRotation(nxcube.AxisX, 0, false))
//
// # State Without the Engine
//
// The State type and Dispatch can be used directly. Changes stay pending on
// the batch until Flush:
//
//	batch := nxcube.NewBatch()
//	state, _ := nxcube.NewState(batch, 4)
//	_ = nxcube.Dispatch(state, nxcube.Rotation{
//	    Scope: nxcube.ScopeLayer, Axis: nxcube.AxisZ, Layer: 1, Angle: 270,
//	})
//	batch.Flush()
//
// # Notation
//
// Rotations have a compact text form: the axis, an optional multiplier
// (2 = 180, 3 = 270, 4 = 360 degrees), an optional ' for backwards and an
// optional @layer for single-layer turns:
//
//	x      whole cube about x
//	y'@0   layer 0 about y, backwards
//	z2@1   layer 1 about z, half turn
//
// # Gestures
//
// A presentation layer forwards pointer events to a Gesture:
//
//	g := nxcube.NewGesture(cube, nxcube.DefaultGestureConfig())
//	g.Down(p, bounds, &nxcube.Target{Face: nxcube.Front, X: 1, Y: 2})
//	g.Move(p2)        // live angle for drawing
//	turn := g.Up()    // state changed, event describes the animation
//	// ... animate turn.Event() ...
//	g.Finish()        // flush to subscribers, release the guard
package nxcube
