package vector_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dynvec/internal/vector"
)

var _ = Describe("Vector", func() {
	var v *vector.Vector[int]

	BeforeEach(func() {
		v = vector.New[int]()
	})

	Describe("growth", func() {
		It("doubles capacity starting from one", func() {
			var caps []int
			for i := 0; i < 9; i++ {
				v.PushBack(i)
				caps = append(caps, v.Capacity())
			}
			Expect(caps).To(Equal([]int{1, 2, 4, 4, 8, 8, 8, 8, 16}))
		})

		It("keeps size within capacity across mixed operations", func() {
			for i := 0; i < 50; i++ {
				switch i % 5 {
				case 0, 1:
					v.PushBack(i)
				case 2:
					v.PushFront(i)
				case 3:
					_, _ = v.PopFront()
				case 4:
					_ = v.RemoveAt(v.Size() / 2)
				}
				Expect(v.Size()).To(BeNumerically("<=", v.Capacity()))
				Expect(v.Size()).To(BeNumerically(">=", 0))
			}
		})
	})

	Describe("empty vector", func() {
		It("rejects front and back access", func() {
			_, err := v.Front()
			Expect(err).To(MatchError(vector.ErrEmptyContainer))
			_, err = v.Back()
			Expect(err).To(MatchError(vector.ErrEmptyContainer))
		})

		It("rejects pops", func() {
			_, err := v.PopBack()
			Expect(err).To(MatchError(vector.ErrEmptyContainer))
			_, err = v.PopFront()
			Expect(err).To(MatchError(vector.ErrEmptyContainer))
		})
	})

	Context("holding 10, 20, 30", func() {
		BeforeEach(func() {
			v = vector.Of(10, 20, 30)
		})

		It("reads by checked index", func() {
			Expect(v.Size()).To(Equal(3))
			Expect(v.At(0)).To(Equal(10))
			Expect(v.At(2)).To(Equal(30))
		})

		It("rejects the index equal to size", func() {
			_, err := v.At(3)
			Expect(err).To(MatchError(vector.ErrOutOfRange))
			Expect(v.RemoveAt(3)).To(MatchError(vector.ErrOutOfRange))
		})

		It("walks remove, push front and clear", func() {
			Expect(v.RemoveAt(1)).To(Succeed())
			Expect(v.Values()).To(Equal([]int{10, 30}))

			v.PushFront(5)
			Expect(v.Values()).To(Equal([]int{5, 10, 30}))

			capBefore := v.Capacity()
			v.Clear()
			Expect(v.Empty()).To(BeTrue())
			Expect(v.Capacity()).To(Equal(capBefore))
		})

		It("pops in LIFO order from the back", func() {
			Expect(v.PopBack()).To(Equal(30))
			Expect(v.PopBack()).To(Equal(20))
			Expect(v.PopBack()).To(Equal(10))
		})

		It("pops in FIFO order from the front", func() {
			Expect(v.PopFront()).To(Equal(10))
			Expect(v.PopFront()).To(Equal(20))
			Expect(v.PopFront()).To(Equal(30))
		})
	})

	Describe("ownership", func() {
		It("leaves the source empty after a transfer", func() {
			a := vector.Of(1, 2, 3)
			b := a.Take()
			Expect(a.Size()).To(BeZero())
			Expect(a.Capacity()).To(BeZero())
			a.Release()
			Expect(b.Values()).To(Equal([]int{1, 2, 3}))
		})

		It("keeps a clone independent of its source", func() {
			a := vector.Of(1, 2, 3)
			b := a.Clone()
			b.PushBack(4)
			b.Set(0, 9)
			Expect(a.Values()).To(Equal([]int{1, 2, 3}))
			Expect(b.Values()).To(Equal([]int{9, 2, 3, 4}))
		})

		It("treats self assignment as a no-op", func() {
			a := vector.Of(1, 2)
			Expect(a.CopyFrom(a)).To(BeIdenticalTo(a))
			Expect(a.MoveFrom(a)).To(BeIdenticalTo(a))
			Expect(a.Values()).To(Equal([]int{1, 2}))
		})
	})
})
