package nxcube

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCell(t *testing.T) {
	Convey("Given a cell on a batch", t, func() {
		batch := NewBatch()
		cell := NewCell(batch, 1)
		var seen []int
		current := cell.Subscribe(func(v int) { seen = append(seen, v) })

		Convey("Subscribe returns the current value without calling back", func() {
			So(current, ShouldEqual, 1)
			So(seen, ShouldBeEmpty)
		})

		Convey("Writing the same value schedules nothing", func() {
			cell.Set(1)
			So(cell.Dirty(), ShouldBeFalse)
			So(batch.Pending(), ShouldEqual, 0)
			So(batch.Flush(), ShouldEqual, 0)
			So(seen, ShouldBeEmpty)
		})

		Convey("A change is held until the batch flushes", func() {
			cell.Set(2)
			So(cell.Value(), ShouldEqual, 2)
			So(cell.Dirty(), ShouldBeTrue)
			So(seen, ShouldBeEmpty)

			So(batch.Flush(), ShouldEqual, 1)
			So(seen, ShouldResemble, []int{2})
			So(cell.Dirty(), ShouldBeFalse)
		})

		Convey("Several writes before a flush notify once with the last value", func() {
			cell.Set(2)
			cell.Set(3)
			cell.Set(4)
			So(batch.Pending(), ShouldEqual, 1)

			batch.Flush()
			So(seen, ShouldResemble, []int{4})
		})

		Convey("Writing back the old value still notifies once", func() {
			cell.Set(2)
			cell.Set(1)
			batch.Flush()
			So(seen, ShouldResemble, []int{1})
		})

		Convey("Bind calls back immediately and on every flush", func() {
			var bound []int
			cell.Bind(func(v int) { bound = append(bound, v) })
			So(bound, ShouldResemble, []int{1})

			cell.Set(5)
			batch.Flush()
			So(bound, ShouldResemble, []int{1, 5})
			So(seen, ShouldResemble, []int{5})
		})
	})
}

func TestBatchFlush(t *testing.T) {
	Convey("Given two cells on one batch", t, func() {
		batch := NewBatch()
		a := NewCell(batch, "a")
		b := NewCell(batch, "b")

		Convey("A subscriber that writes during a flush is delivered next flush", func() {
			var got []string
			a.Subscribe(func(v string) {
				got = append(got, "a="+v)
				b.Set(v + "!")
			})
			b.Subscribe(func(v string) { got = append(got, "b="+v) })

			a.Set("x")
			So(batch.Flush(), ShouldEqual, 1)
			So(got, ShouldResemble, []string{"a=x"})
			So(batch.Pending(), ShouldEqual, 1)

			So(batch.Flush(), ShouldEqual, 1)
			So(got, ShouldResemble, []string{"a=x", "b=x!"})
		})

		Convey("A subscriber added to an already flushed cell waits for the next flush", func() {
			var late []string
			b.Subscribe(func(string) {
				a.Subscribe(func(v string) { late = append(late, v) })
			})

			a.Set("x")
			b.Set("y")
			batch.Flush()
			So(late, ShouldBeEmpty)

			a.Set("z")
			batch.Flush()
			So(late, ShouldResemble, []string{"z"})
		})

		Convey("Flushing an empty batch does nothing", func() {
			So(batch.Flush(), ShouldEqual, 0)
		})
	})
}

func TestStateCells(t *testing.T) {
	Convey("Given a 3x3 cube", t, func() {
		c, err := New(3)
		So(err, ShouldBeNil)

		calls := map[Face]int{}
		for _, face := range Faces {
			c.Cell(face, 1, 1).Subscribe(func(Face) { calls[face]++ })
		}

		Convey("A middle-layer turn notifies each moved centre once", func() {
			So(c.Rotate(context.Background(), LayerRotation(AxisX, 1, false)), ShouldBeNil)
			So(calls[Up], ShouldEqual, 1)
			So(calls[Front], ShouldEqual, 1)
			So(calls[Down], ShouldEqual, 1)
			So(calls[Back], ShouldEqual, 1)
			So(calls[Left], ShouldEqual, 0)
			So(calls[Right], ShouldEqual, 0)
		})

		Convey("An outer-layer turn leaves the centres alone", func() {
			So(c.Rotate(context.Background(), LayerRotation(AxisY, 0, true)), ShouldBeNil)
			So(calls, ShouldBeEmpty)
		})
	})
}
