// Package configkeys names the configuration keys of the tabfunc CLI. Each
// key is also read from the environment as TABFUNC_ plus the key upper-cased
// with dots turned into underscores, e.g. TABFUNC_TASKS_NUM_WORKERS.
package configkeys

const (
	delimiter = "."

	EnvPrefix = "tabfunc"

	ConfigLogPrefix = "log"
	ConfigLogLevel  = ConfigLogPrefix + delimiter + "level"

	ConfigFunctionPrefix = "function"
	ConfigFunctionName   = ConfigFunctionPrefix + delimiter + "name"
	ConfigFunctionLeft   = ConfigFunctionPrefix + delimiter + "left"
	ConfigFunctionRight  = ConfigFunctionPrefix + delimiter + "right"

	ConfigIntegratePrefix   = "integrate"
	ConfigIntegrateStep     = ConfigIntegratePrefix + delimiter + "step"
	ConfigIntegrateMemoSize = ConfigIntegratePrefix + delimiter + "memo_size"

	ConfigTabulatePrefix = "tabulate"
	ConfigTabulateCount  = ConfigTabulatePrefix + delimiter + "count"
	ConfigTabulateFormat = ConfigTabulatePrefix + delimiter + "format"

	ConfigTasksPrefix        = "tasks"
	ConfigTasksCount         = ConfigTasksPrefix + delimiter + "count"
	ConfigTasksSeed          = ConfigTasksPrefix + delimiter + "seed"
	ConfigTasksPool          = ConfigTasksPrefix + delimiter + "pool"
	ConfigTasksHandlerPrefix = ConfigTasksPrefix + delimiter + "handler"

	ConfigTasksHandlerBufferSize    = ConfigTasksHandlerPrefix + delimiter + "buffer_size"
	ConfigTasksHandlerNumWorkers    = ConfigTasksHandlerPrefix + delimiter + "num_workers"
	ConfigTasksHandlerReorderWindow = ConfigTasksHandlerPrefix + delimiter + "reorder_window"
)
