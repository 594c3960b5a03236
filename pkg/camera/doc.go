// Package camera hosts one discovered device: it runs discovery when the
// device is opened, serves property reads and writes, and tracks whether
// the device is capturing.
//
// Opening two devices with the same full name shares one schema through a
// SchemaCache, so discovery runs once per device type.
package camera
