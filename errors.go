package transitmodel

import "errors"

// ErrAmbiguousForeignKey reports an optional foreign key left empty when
// zero or several candidate targets exist. An empty optional key resolves
// only when the target collection holds exactly one entity.
var ErrAmbiguousForeignKey = errors.New("ambiguous foreign key")
