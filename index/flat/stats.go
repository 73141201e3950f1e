package flat

import "github.com/hupe1980/kdgo/index"

// Stats returns the size of the set.
func (f *Flat) Stats() index.Stats {
	return index.Stats{
		Name: f.Name(),
		Size: len(f.points),
	}
}
