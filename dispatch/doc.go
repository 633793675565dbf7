/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package dispatch routes typed requests to their handlers through an
// explicit registration table.
//
// A handler maps one request type to one dresult.Of result. Handlers are
// registered at startup:
//
//	mux := dispatch.NewMux()
//	dispatch.MustRegister(mux, dispatch.Chain[GetOrder, Order](
//	    handler,
//	    dispatch.Recover[GetOrder, Order](),
//	    dispatch.Logging[GetOrder, Order](logger),
//	))
//
// and dispatched by type:
//
//	res, err := dispatch.Send[GetOrder, Order](ctx, mux, GetOrder{ID: "42"})
//
// Send separates routing problems (returned error) from domain failures
// (inside the result): a missing registration is a wiring bug surfaced as
// ErrNotRegistered, while "order not found" travels as data in the result.
//
// Cross-cutting concerns are decorators composed by plain function
// application (Chain), never discovered reflectively.
package dispatch
