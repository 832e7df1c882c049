// Package assets provides style presets and HTML templates for CV rendering.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - presets and templates compiled into the binary
//	    ├── FilesystemLoader  - assets from a custom directory on disk
//	    └── AssetResolver     - custom-first lookup with embedded fallback
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.json|.yaml|.yml   # style documents
//	└── templates/
//	    └── {name}.html              # document templates
//
// Embedded presets are JSON only. A custom directory may override any of
// them, or add new ones, in either JSON or YAML.
//
// # Security
//
// Asset names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
