package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
	"github.com/fulldump/box/boxopenapi"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/service"
)

func Build(s service.Servicer, version string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		box.SetResponseHeader("Content-Type", "application/json"),
		injectServicer(s),
	)

	buildEntities(v1, "/subjects", "subject", service.Servicer.Subjects)
	buildEntities(v1, "/groups", "group", service.Servicer.Groups)
	buildEntities(v1, "/links", "link", service.Servicer.Links)

	v1.Resource("/groups/{id}/subjects").
		WithActions(
			box.Get(subjectsOfGroup).WithName("subjectsOfGroup"),
		)

	v1.Resource("/subjects/{id}/groups").
		WithActions(
			box.Get(groupsOfSubject).WithName("groupsOfSubject"),
		)

	v1.Resource("/storage").
		WithActions(
			box.ActionPost(saveStorage).WithName("save"),
		)

	v1.Resource("/storage/snapshots").
		WithActions(
			box.Get(listSnapshots).WithName("listSnapshots"),
		)

	b.Resource("/release").
		WithActions(
			box.Get(func() string {
				return version
			}).WithName("release"),
		)

	spec := boxopenapi.Spec(b)
	spec.Info.Title = "ScheduleMultipartiteGraph"
	spec.Info.Description = "Subjects, student groups and the links between them, persisted as JSON snapshots."
	spec.Info.Version = version
	b.Resource("/openapi.json").
		WithActions(
			box.Get(func(r *http.Request) any {
				hosted := spec
				hosted.Servers = []boxopenapi.Server{
					{
						Url: "http://" + r.Host,
					},
				}
				return hosted
			}).WithName("openapi"),
		)

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(SetServicer(ctx, s))
		}
	}
}
