/*Package metrics wraps datadog-go to facilitate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/strategic-club/commerce-api/base/log"
)

// buffer a few counters before sending to the statsd agent
const bufferedMetrics = 10

// Ender finishes a timer started by BumpTime.
type Ender interface {
	End()
}

// Service records metrics under a package name prefix. Tags are key/value
// pairs flattened into the argument list.
type Service interface {
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)
	BumpTime(key string, tags ...string) Ender
}

// sink is the subset of the statsd client the service needs. The log sink
// stands in when no agent address is configured.
type sink interface {
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

var (
	initOnce    sync.Once
	defaultSink sink
)

func initSink() {
	addr := viper.GetString("metrics.agentAddr")
	if addr == "" {
		log.Log().Info("no statsd agent configured, metrics go to debug logs")
		defaultSink = &logSink{}
		return
	}

	log.Log().WithField("addr", addr).Info("connecting to statsd agent")
	cli, err := statsd.NewBuffered(addr, bufferedMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to statsd agent")
	}
	defaultSink = cli
}

// New creates a metric service prefixing every key with pkgName.
func New(pkgName string) Service {
	initOnce.Do(initSink)
	return newWithSink(pkgName, defaultSink)
}

func newWithSink(pkgName string, s sink) Service {
	return &metrics{pkgName: pkgName, sink: s}
}

type metrics struct {
	pkgName string
	sink    sink
}

// BumpSum bumps the sum for the given key.
func (mt *metrics) BumpSum(key string, val float64, tags ...string) {
	name := mt.pkgName + `.` + key
	if err := mt.sink.Count(name, int64(val), parseTags(tags), 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": name, "val": val}).Error("Bump fail")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (mt *metrics) BumpHistogram(key string, val float64, tags ...string) {
	name := mt.pkgName + `.` + key
	if err := mt.sink.Histogram(name, val, parseTags(tags), 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": name, "val": val}).Error("Bump fail")
	}
}

// BumpTime starts a timer for the given key. Calling End() on the returned
// value reports the elapsed time:
//
//     defer s.BumpTime("my.function").End()
func (mt *metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start: time.Now(),
		key:   mt.pkgName + `.` + key,
		tags:  parseTags(tags),
		sink:  mt.sink,
	}
}

// parseTags turns ("method", "GET", "path", "/x") into datadog tag form.
func parseTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
	sink  sink
}

func (t *timeTracker) End() {
	d := time.Since(t.start)
	msec := d / time.Millisecond
	nsec := d % time.Millisecond
	dur := float64(msec) + float64(nsec)*1e-6

	if err := t.sink.TimeInMilliseconds(t.key, dur, t.tags, 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key, "val": dur}).Error("Bump fail")
	}
}
