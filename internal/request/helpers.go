package request

func deref[T any](p *T) T {
    var zero T
    if p == nil {
        return zero
    }
    return *p
}

// set overwrites *dst only when the client sent a value.
func set[T any](dst *T, v *T) {
    if v != nil {
        *dst = *v
    }
}
