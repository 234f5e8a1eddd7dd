package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	TableEntries = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "hashtable_entries",
		Help: "Number of stored entries by table",
	}, []string{"table"})

	TableCapacity = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "hashtable_capacity_buckets",
		Help: "Current bucket count by table",
	}, []string{"table"})

	TableLoadFactor = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "hashtable_load_factor",
		Help: "entries/capacity by table",
	}, []string{"table"})

	InsertCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hashtable_insert_total",
		Help: "Total number of inserts by table",
	}, []string{"table"})

	DeleteCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hashtable_delete_total",
		Help: "Total number of deletes by table",
	}, []string{"table"})

	ResizeCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hashtable_resize_total",
		Help: "Total number of bucket-array doublings by table",
	}, []string{"table"})

	RehashedEntries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hashtable_rehashed_entries_total",
		Help: "Total entries moved during resizes by table",
	}, []string{"table"})
)

func init() {
	prometheus.MustRegister(TableEntries)
	prometheus.MustRegister(TableCapacity)
	prometheus.MustRegister(TableLoadFactor)
	prometheus.MustRegister(InsertCount)
	prometheus.MustRegister(DeleteCount)
	prometheus.MustRegister(ResizeCount)
	prometheus.MustRegister(RehashedEntries)
}

// TableObserver exports hashtable mutations to prometheus. Plug it into
// hashtable.Config.Observer; one observer per table name.
type TableObserver struct {
	name string
}

func NewTableObserver(name string) *TableObserver {
	return &TableObserver{name: name}
}

func (o *TableObserver) OnInsert(size, capacity int) {
	InsertCount.WithLabelValues(o.name).Inc()
	o.setShape(size, capacity)
}

func (o *TableObserver) OnDelete(size, capacity int) {
	DeleteCount.WithLabelValues(o.name).Inc()
	o.setShape(size, capacity)
}

func (o *TableObserver) OnResize(oldCap, newCap, moved int) {
	ResizeCount.WithLabelValues(o.name).Inc()
	RehashedEntries.WithLabelValues(o.name).Add(float64(moved))
	TableCapacity.WithLabelValues(o.name).Set(float64(newCap))
}

func (o *TableObserver) setShape(size, capacity int) {
	TableEntries.WithLabelValues(o.name).Set(float64(size))
	TableCapacity.WithLabelValues(o.name).Set(float64(capacity))
	TableLoadFactor.WithLabelValues(o.name).Set(float64(size) / float64(capacity))
}
