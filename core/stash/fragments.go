package stash

// GraphQL fragments shared by the find queries. Each fragment selects the
// fields the corresponding domain type carries; entity files concatenate
// these into full documents.

const tagFragment = `
fragment TagData on Tag {
  id
  name
  aliases
  description
}`

const studioFragment = `
fragment StudioData on Studio {
  id
  name
  url
  aliases
  details
  parent_studio {
    id
    name
    url
  }
}`

const performerFragment = tagFragment + `
fragment PerformerData on Performer {
  id
  name
  disambiguation
  urls
  gender
  birthdate
  country
  alias_list
  details
  favorite
  image_path
  tags {
    ...TagData
  }
}`

const sceneFragment = performerFragment + studioFragment + `
fragment SceneData on Scene {
  id
  title
  code
  details
  urls
  date
  organized
  created_at
  updated_at
  files {
    id
    path
    basename
    size
    duration
    width
    height
  }
  studio {
    ...StudioData
  }
  performers {
    ...PerformerData
  }
  tags {
    ...TagData
  }
  galleries {
    id
    title
    code
  }
}`

const galleryFragment = performerFragment + studioFragment + `
fragment GalleryData on Gallery {
  id
  title
  code
  date
  details
  urls
  organized
  image_count
  studio {
    ...StudioData
  }
  performers {
    ...PerformerData
  }
  tags {
    ...TagData
  }
}`

const imageFragment = performerFragment + studioFragment + `
fragment ImageData on Image {
  id
  title
  code
  urls
  date
  organized
  visual_files {
    ... on ImageFile {
      id
      path
      basename
      size
      width
      height
    }
  }
  studio {
    ...StudioData
  }
  performers {
    ...PerformerData
  }
  tags {
    ...TagData
  }
  galleries {
    id
    title
    code
  }
}`

const markerFragment = tagFragment + `
fragment MarkerData on SceneMarker {
  id
  title
  seconds
  primary_tag {
    ...TagData
  }
  tags {
    ...TagData
  }
}`
