package nfa

import (
	"iter"
	"sync"
)

// Hashable 自定义哈希接口
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap 自定义哈希表结构
type HashMap[K Hashable, V any] struct {
	buckets     []*Entry[K, V]
	size        int
	mask        uint64
	mutex       sync.RWMutex
	emptyValue  V
	loadFactory float64
}

// Entry 哈希表条目
type Entry[K Hashable, V any] struct {
	key   K
	value V
	next  *Entry[K, V]
}

type optionsHashMap struct {
	capacity    int     // 默认1
	loadFactory float64 // 负载因子，默认0.75
}

func newOptionsHashMap(opts ...OptionsHashMap) *optionsHashMap {
	options := &optionsHashMap{
		capacity:    1,
		loadFactory: 0.75,
	}

	for _, opt := range opts {
		opt(options)
	}

	realCap := 1
	for realCap < options.capacity {
		realCap <<= 1
	}
	options.capacity = realCap

	return options
}

type OptionsHashMap func(hashMap *optionsHashMap)

func WithCapacity(capacity int) OptionsHashMap {
	return func(hashMap *optionsHashMap) {
		hashMap.capacity = capacity
	}
}

// NewHashMap 创建哈希表
// 参数：capacity 初始容量（自动调整为2的幂）
func NewHashMap[K Hashable, V any](options ...OptionsHashMap) *HashMap[K, V] {
	opt := newOptionsHashMap(options...)

	return &HashMap[K, V]{
		buckets:     make([]*Entry[K, V], opt.capacity),
		mask:        uint64(opt.capacity - 1),
		loadFactory: opt.loadFactory,
	}
}

// Set 插入键值对
func (m *HashMap[K, V]) Set(key K, value V) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	index := key.Hash() & m.mask

	// 遍历链表查找是否存在相同key
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	// 头插法添加新条目
	m.buckets[index] = &Entry[K, V]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > m.loadFactory {
		m.resize()
	}
}

// Get 获取值
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	return m.emptyValue, false
}

// 扩容哈希表
func (m *HashMap[K, V]) resize() {
	newCap := len(m.buckets) << 1
	newBuckets := make([]*Entry[K, V], newCap)
	newMask := uint64(newCap - 1)

	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			newIndex := e.key.Hash() & newMask
			newBuckets[newIndex] = &Entry[K, V]{
				key:   e.key,
				value: e.value,
				next:  newBuckets[newIndex],
			}
		}
	}

	m.buckets = newBuckets
	m.mask = newMask
}

// Size 获取元素数量
func (m *HashMap[K, V]) Size() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.size
}

// All Iterates every entry in bucket order, over a snapshot taken when iteration starts.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.mutex.RLock()
		entries := make([]*Entry[K, V], 0, m.size)
		for _, bucket := range m.buckets {
			for e := bucket; e != nil; e = e.next {
				entries = append(entries, e)
			}
		}
		m.mutex.RUnlock()

		for _, e := range entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys Returns a snapshot of the keys in bucket order.
func (m *HashMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.Size())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}
