// Package config loads the r2-client configuration.
//
// It uses Viper over struct tags: every field carries a mapstructure key and
// a default, and environment variables override them with dots replaced by
// underscores (STORAGE_ACCESS_KEY_ID sets storage.access_key_id). A .env file
// in the base directory is loaded first when present.
//
// # Layered files
//
// Optional JSON files are merged between the defaults and the environment:
// <prefix>.json, then <prefix>.<env>.json, where env comes from APP_ENV for
// LoadConfig. Either file may be absent.
//
//	{
//	  "storage": {
//	    "endpoint": "https://<account>.r2.cloudflarestorage.com",
//	    "bucket": "assets"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
