package panicerr

// Recover calls f, converting any panic raised while it runs into a non-nil
// error return. The call happens on the caller's goroutine, so f may freely
// touch state owned by the caller.
func Recover(name string, f func() error) (err error) {
	defer recoverPanicError(name, &err)
	return f()
}
