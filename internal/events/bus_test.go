package events

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type BusSuite struct {
	suite.Suite
}

func TestBusSuite(t *testing.T) {
	suite.Run(t, new(BusSuite))
}

func (s *BusSuite) TestPublishReachesAllSubscribers() {
	bus := NewBus[int]()

	var first, second []int
	bus.Subscribe("first", func(v int) { first = append(first, v) })
	bus.Subscribe("second", func(v int) { second = append(second, v) })

	bus.Publish(1)
	bus.Publish(2)

	s.Equal([]int{1, 2}, first)
	s.Equal([]int{1, 2}, second)
}

func (s *BusSuite) TestUnsubscribeStopsDelivery() {
	bus := NewBus[string]()

	var got []string
	bus.Subscribe("listener", func(v string) { got = append(got, v) })

	bus.Publish("a")
	bus.Unsubscribe("listener")
	bus.Publish("b")

	s.Equal([]string{"a"}, got)
}

func (s *BusSuite) TestResubscribeReplacesHandler() {
	bus := NewBus[int]()

	var old, replacement int
	bus.Subscribe("listener", func(v int) { old = v })
	bus.Subscribe("listener", func(v int) { replacement = v })

	bus.Publish(7)

	s.Equal(0, old)
	s.Equal(7, replacement)
}

func (s *BusSuite) TestPublishWithNoSubscribers() {
	bus := NewBus[int]()
	bus.Publish(1)
}

func (s *BusSuite) TestConcurrentPublish() {
	bus := NewBus[int]()

	var mu sync.Mutex
	count := 0
	bus.Subscribe("counter", func(int) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bus.Publish(j)
			}
		}()
	}
	wg.Wait()

	s.Equal(1000, count)
}
