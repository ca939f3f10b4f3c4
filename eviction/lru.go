// This file implements LRU eviction.

package eviction

// lruNode represents ONE key inside the LRU structure. We use a doubly-linked list to track usage order.
type lruNode struct {
	key string

	// prev points toward the most recently used end
	prev *lruNode

	// next points toward the least recently used end
	next *lruNode
}

// lru is the concrete implementation of the LRU eviction policy.
type lru struct {
	// nodes maps keys to their list nodes, so a key can be found and
	// moved in O(1) time.
	nodes map[string]*lruNode

	// head points to the MOST recently used key
	head *lruNode

	// tail points to the LEAST recently used key
	tail *lruNode
}

func newLRU() *lru {
	return &lru{nodes: make(map[string]*lruNode)}
}

// OnGet is called whenever a key is read from the store. An accessed key
// becomes "recently used", so its node moves to the front of the list.
func (l *lru) OnGet(k string) {
	if n, ok := l.nodes[k]; ok {
		l.moveToFront(n)
	}
}

// OnPut is called whenever a key is inserted or overwritten.
// Either way the key ends up at the front: a new key gets a fresh node,
// an existing key is promoted just like a read.
func (l *lru) OnPut(k string) {
	if n, ok := l.nodes[k]; ok {
		l.moveToFront(n)
		return
	}
	n := &lruNode{key: k}
	l.nodes[k] = n
	l.addFront(n)
}

// Evict is called when the store is full. Removes the LEAST recently used
// key, which is always at the tail of the list.
func (l *lru) Evict() string {
	if l.tail == nil {
		// Nothing to evict
		return ""
	}

	k := l.tail.key
	l.unlink(l.tail)
	delete(l.nodes, k)
	return k
}

// Remove is called when a key is explicitly removed (not evicted due to capacity).
// This keeps LRU's internal state consistent.
func (l *lru) Remove(k string) {
	if n, ok := l.nodes[k]; ok {
		l.unlink(n)
		delete(l.nodes, k)
	}
}

// Reset drops every node at once.
func (l *lru) Reset() {
	l.nodes = make(map[string]*lruNode)
	l.head = nil
	l.tail = nil
}

// addFront adds a node to the front of the linked list. This marks the node as "most recently used".
func (l *lru) addFront(n *lruNode) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n

	// If the list was empty, head and tail are the same
	if l.tail == nil {
		l.tail = n
	}
}

// unlink removes a node from the linked list, fixing up neighbours and
// head/tail as needed.
func (l *lru) unlink(n *lruNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
}

// moveToFront is used when a key is accessed.
// 1. Unlink the node from its current position
// 2. Add it to the front
// This marks it as most recently used.
func (l *lru) moveToFront(n *lruNode) {
	if l.head == n {
		return
	}
	l.unlink(n)
	l.addFront(n)
}
