// Package consts holds the well-known file names, directory names and
// default storage identifiers shared by the apify commands.
package consts

const (
	// GlobalConfigsFolderName is the per-user directory, relative to $HOME,
	// holding credentials and CLI settings.
	GlobalConfigsFolderName = ".apify"

	// AuthFileName is the credentials file inside the global config folder.
	AuthFileName = "auth.json"

	// LocalConfigName is the project configuration file written by "apify init".
	LocalConfigName = "apify.json"

	// Local emulation layout, relative to the project directory.
	LocalEmulationDir      = "apify_local"
	LocalDatasetsDir       = "datasets"
	LocalKeyValueStoresDir = "key_value_stores"

	DefaultDatasetID       = "default"
	DefaultKeyValueStoreID = "default"

	GitignoreName   = ".gitignore"
	PackageJSONName = "package.json"

	// RunLocalScript is the package.json script added by the scaffolder.
	RunLocalScript = "run-local"

	// DefaultEntryPoint is used when package.json has no "main" field.
	DefaultEntryPoint = "main.js"

	DefaultAPIBaseURL = "https://api.apify.com"
)

// User-facing messages.
const (
	MsgNotLoggedIn        = `You aren't logged in. Call "apify login" to log in.`
	MsgLocalConfigMissing = LocalConfigName + ` is missing in current dir! Call "apify init" to create it.`
)
