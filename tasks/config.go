package tasks

const (
	DefaultTasksCount = 100

	// integrands are memoized over this many recent points per generation;
	// the trapezoid rule only revisits the previous node.
	memoSize = 2
)

type Config struct {
	BufferSize    int    // default: 1
	NumWorkers    int    // default: 1
	TasksCount    int    // default: DefaultTasksCount
	ReorderWindow int    // default: NumWorkers * (BufferSize + 2)
	Seed          uint64 // any value; equal seeds give equal task streams
}

func NewConfig(bufferSize, numWorkers, tasksCount, reorderWindow int, seed uint64) Config {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if tasksCount <= 0 {
		tasksCount = DefaultTasksCount
	}
	if reorderWindow <= 0 {
		reorderWindow = numWorkers * (bufferSize + 2)
	}
	return Config{
		BufferSize:    bufferSize,
		NumWorkers:    numWorkers,
		TasksCount:    tasksCount,
		ReorderWindow: reorderWindow,
		Seed:          seed,
	}
}

func (c Config) normalized() Config {
	return NewConfig(c.BufferSize, c.NumWorkers, c.TasksCount, c.ReorderWindow, c.Seed)
}
