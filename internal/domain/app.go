package domain

// PackageFlags selects which package metadata the platform should return
type PackageFlags int

const (
	// GetMetaData asks for the application meta-data bundle
	GetMetaData PackageFlags = 0x00000080
	// MatchUninstalledPackages includes packages removed but retained with data
	MatchUninstalledPackages PackageFlags = 0x00002000
)

// CatalogFlags are the flags used when fetching the app catalog
const CatalogFlags = GetMetaData | MatchUninstalledPackages

// Has reports whether all bits of f are set
func (p PackageFlags) Has(f PackageFlags) bool {
	return p&f == f
}

// AppRecord represents one installed application as seen by the catalog
type AppRecord struct {
	PackageName      string // e.g., "org.example.module"
	UserID           int    // Owning user profile
	Label            string // Platform label hint, may be empty
	FirstInstallTime int64  // Unix millis
	LastUpdateTime   int64  // Unix millis, >= FirstInstallTime
	Uninstalled      bool   // Removed but retained with data
}

// Key returns the identity of the record within the catalog
func (a AppRecord) Key() AppKey {
	return AppKey{PackageName: a.PackageName, UserID: a.UserID}
}

// AppKey identifies a package within a user profile
type AppKey struct {
	PackageName string
	UserID      int
}
