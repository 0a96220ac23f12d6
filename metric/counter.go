package metric

import (
	"reflect"
	"time"

	"github.com/viant/gmetric"
	"github.com/viant/gmetric/counter"
	"github.com/viant/gmetric/provider"
)

type Counter interface {
	Begin(started time.Time) counter.OnDone
	DecrementValue(value interface{}) int64
	IncrementValue(value interface{}) int64
}

func NewCounter(counter Counter) *CounterAdapter {
	return &CounterAdapter{
		counter: counter,
	}
}

//NewOperationCounter looks up or registers named operation counter on service
func NewOperationCounter(service *gmetric.Service, name, title string) *CounterAdapter {
	if service == nil {
		return NewCounter(nil)
	}
	cnt := service.LookupOperation(name)
	if cnt == nil {
		cnt = service.MultiOperationCounter(location(), name, title, time.Millisecond, time.Minute, 2, provider.NewBasic())
	}
	return NewCounter(cnt)
}

type CounterAdapter struct {
	counter Counter
}

func (c *CounterAdapter) Begin(started time.Time) counter.OnDone {
	if c.counter == nil {
		return nopOnDone
	}

	return c.counter.Begin(started)
}

func (c *CounterAdapter) DecrementValue(value interface{}) int64 {
	if c.counter == nil {
		return 0
	}
	return c.counter.DecrementValue(value)
}

func (c *CounterAdapter) IncrementValue(value interface{}) int64 {
	if c.counter == nil {
		return 0
	}
	return c.counter.IncrementValue(value)
}

func nopOnDone(_ time.Time, _ ...interface{}) int64 {
	return 0
}

type metricsLocation struct{}

func location() string {
	return reflect.TypeOf(metricsLocation{}).PkgPath()
}
