package constants

const (
	APP_NAME    = "Inkwell"
	API_VERSION = "v1"

	DEFAULT_PAGE_SIZE    = 10
	MAX_PAGE_SIZE        = 100
	DEFAULT_LATEST_POSTS = 5

	BACKUPS_TO_KEEP = 10
	// VACUUM is worth running once this many free pages have accumulated.
	VACUUM_FREELIST_THRESHOLD = 1000
)
