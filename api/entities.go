package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fulldump/box"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/entity"
	"github.com/Ghost835545/ScheduleMultipartiteGraph/service"
)

// buildEntities mounts list, create and find on path plus the per record
// actions on path/{id}.
func buildEntities[T any, PT entity.Record[T]](parent *box.R, path, kind string, entities func(service.Servicer) *service.Entities[T, PT]) *box.R {

	collection := parent.Resource(path).
		WithActions(
			box.Get(listEntities(entities)).WithName("list"),
			box.Post(createEntity(entities)).WithName("create"),
			box.ActionPost(findEntities(entities)).WithName("find"),
		)

	parent.Resource(path+"/{id}").
		WithActions(
			box.Get(getEntity(kind, entities)).WithName("get"),
			box.Put(updateEntity(kind, entities)).WithName("update"),
			box.Patch(patchEntity(kind, entities)).WithName("patch"),
			box.Delete(deleteEntity(kind, entities)).WithName("delete"),
		)

	parent.Resource(path+"/{id}/fields/{path}").
		WithActions(
			box.Get(getField(kind, entities)).WithName("getField"),
		)

	return collection
}

func listEntities[T any, PT entity.Record[T]](entities func(service.Servicer) *service.Entities[T, PT]) any {
	return func(ctx context.Context) []T {
		return entities(GetServicer(ctx)).List()
	}
}

func createEntity[T any, PT entity.Record[T]](entities func(service.Servicer) *service.Entities[T, PT]) any {
	return func(ctx context.Context, w http.ResponseWriter, input T) (*T, error) {

		created, err := entities(GetServicer(ctx)).Create(input)
		if err != nil {
			return nil, err
		}

		w.WriteHeader(http.StatusCreated)
		return &created, nil
	}
}

func findEntities[T any, PT entity.Record[T]](entities func(service.Servicer) *service.Entities[T, PT]) any {
	return func(ctx context.Context, query service.Query[T]) ([]T, error) {
		return entities(GetServicer(ctx)).Find(query)
	}
}

func getEntity[T any, PT entity.Record[T]](kind string, entities func(service.Servicer) *service.Entities[T, PT]) any {
	return func(ctx context.Context) (*T, error) {

		id, err := urlId(ctx)
		if err != nil {
			return nil, err
		}

		record, err := entities(GetServicer(ctx)).Get(id)
		if err != nil {
			return nil, describeNotFound(err, kind, id)
		}

		return &record, nil
	}
}

func updateEntity[T any, PT entity.Record[T]](kind string, entities func(service.Servicer) *service.Entities[T, PT]) any {
	return func(ctx context.Context, input T) (*T, error) {

		id, err := urlId(ctx)
		if err != nil {
			return nil, err
		}

		updated, err := entities(GetServicer(ctx)).Update(id, input)
		if err != nil {
			return nil, describeNotFound(err, kind, id)
		}

		return &updated, nil
	}
}

func patchEntity[T any, PT entity.Record[T]](kind string, entities func(service.Servicer) *service.Entities[T, PT]) any {
	return func(ctx context.Context, fields map[string]any) (*T, error) {

		id, err := urlId(ctx)
		if err != nil {
			return nil, err
		}

		patched, err := entities(GetServicer(ctx)).Patch(id, fields)
		if err != nil {
			return nil, describeNotFound(err, kind, id)
		}

		return &patched, nil
	}
}

func getField[T any, PT entity.Record[T]](kind string, entities func(service.Servicer) *service.Entities[T, PT]) any {
	return func(ctx context.Context) (any, error) {

		id, err := urlId(ctx)
		if err != nil {
			return nil, err
		}

		value, err := entities(GetServicer(ctx)).Field(id, box.GetUrlParameter(ctx, "path"))
		if err != nil {
			return nil, describeNotFound(err, kind, id)
		}

		return value, nil
	}
}

func deleteEntity[T any, PT entity.Record[T]](kind string, entities func(service.Servicer) *service.Entities[T, PT]) any {
	return func(ctx context.Context, w http.ResponseWriter) error {

		id, err := urlId(ctx)
		if err != nil {
			return err
		}

		err = entities(GetServicer(ctx)).Delete(id)
		if err != nil {
			return describeNotFound(err, kind, id)
		}

		w.WriteHeader(http.StatusNoContent)
		return nil
	}
}

func urlId(ctx context.Context) (int, error) {

	param := box.GetUrlParameter(ctx, "id")

	id, err := strconv.Atoi(param)
	if err != nil {
		return 0, &DescribedError{
			Err:         ErrInvalidId,
			Description: fmt.Sprintf("id '%s' is not an integer", param),
		}
	}

	return id, nil
}
